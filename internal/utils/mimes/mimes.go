package mimes

const (
	// multipart
	Multipart_form_data = "multipart/form-data" // multipart/form-data

	// application
	App_x_www_form_urlencoded = "application/x-www-form-urlencoded" // application/x-www-form-urlencoded
	App_json                  = "application/json"                  // application/json

	// text
	Text_html  = "text/html"  // text/html
	Text_plain = "text/plain" // text/plain
)
