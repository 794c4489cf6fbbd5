package pagination

import (
	"net/http"
	"strconv"

	"github.com/oortega14/jsonapi-responses/api/apierror"
	"github.com/oortega14/jsonapi-responses/utils/param"

	"github.com/go-playground/validator/v10"
)

const (
	MinPerPage     = 1
	MaxPerPage     = 100
	DefaultPerPage = 20
	DefaultPage    = 1
)

type Params struct {
	Page    int `validate:"gte=1"`
	PerPage int `validate:"gte=1,lte=100"`
}

func NewFromRequest(r *http.Request) (Params, apierror.Error) {
	var params Params
	var err error

	page := r.URL.Query().Get(param.Page.Name)

	if page != "" {
		params.Page, err = strconv.Atoi(page)
		if err != nil {
			return params, apierror.FormInvalidParameterValue(param.Page.Name, page)
		}

		// Convert invalid values to default
		if params.Page < DefaultPage {
			params.Page = DefaultPage
		}
	} else {
		params.Page = DefaultPage
	}

	perPage := r.URL.Query().Get(param.PerPage.Name)

	if perPage != "" {
		params.PerPage, err = strconv.Atoi(perPage)
		if err != nil {
			return params, apierror.FormInvalidParameterValue(param.PerPage.Name, perPage)
		}

		// Convert out-of-range values to default
		if params.PerPage < MinPerPage || params.PerPage > MaxPerPage {
			params.PerPage = DefaultPerPage
		}
	} else {
		params.PerPage = DefaultPerPage
	}

	if err = validator.New().Struct(params); err != nil {
		return params, apierror.FormValidationFailed(err)
	}

	return params, nil
}
