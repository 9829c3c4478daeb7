package bakery

// Page is an entry point of the application, relative to the base location.
type Page string

const (
	PageLogin     Page = "login.html"
	PageRegister  Page = "register.html"
	PageDashboard Page = "dashboard.html"
)
