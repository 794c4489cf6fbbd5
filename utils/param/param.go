// Package param declares the request parameter names this library reads.
package param

type Param struct {
	Name string
}

func newParam(name string) Param {
	return Param{Name: name}
}

var (
	View    = newParam("view")
	Page    = newParam("page")
	PerPage = newParam("per_page")
)
