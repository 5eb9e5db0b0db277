package dashboard

import (
	"html/template"
	"net/http"
	"pricewatch/internal/notice"
)

// The page shell is deliberately bare: styling is not this app's concern.
// The product list markup is produced by the view package and spliced in
// already escaped.
const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Price Tracker</title>
</head>
<body>
{{if .Notice}}<div class="notification {{.Notice.Severity}}">{{.Notice.Message}}</div>{{end}}
{{if .LoggedIn}}
<div id="userInfo">
<span id="usernameDisplay">{{.Username}}</span>
<form action="/logout" method="post"><button type="submit">Logout</button></form>
</div>
<div id="dashboardSection">
<form id="addProductForm" action="/products" method="post">
<input name="name" placeholder="Product name" required>
<input name="url" placeholder="Product URL" required>
<input name="targetPrice" placeholder="Target price (optional)">
<button type="submit">Add Product</button>
</form>
<form id="quickCheckForm" action="/quick-check" method="post">
<input name="url" placeholder="Check any product URL" required>
<button type="submit">Quick Check</button>
</form>
<form action="/check-all" method="post"><button type="submit">Check All Prices</button></form>
<div id="productsList">
{{.ListHTML}}
</div>
</div>
{{else}}
<div id="authSection">
<form id="loginForm" action="/login" method="post">
<input name="email" type="email" placeholder="Email" required>
<input name="password" type="password" placeholder="Password" required>
<button type="submit">Login</button>
</form>
<form id="registerForm" action="/register" method="post">
<input name="username" placeholder="Username" required>
<input name="email" type="email" placeholder="Email" required>
<input name="password" type="password" placeholder="Password" required>
<button type="submit">Register</button>
</form>
</div>
{{end}}
</body>
</html>
`

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

type pageData struct {
	LoggedIn bool
	Username string
	Notice   *notice.Notice
	ListHTML template.HTML
}

func (s *Server) writePage(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		s.Logger.Errorf("writePage: Error executing page template, err: %v", err)
	}
}
