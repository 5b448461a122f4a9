package loopback

import "html/template"

// Self-contained pages shown in the user's browser after the redirect.
// Kept dependency-free so the listener can die immediately after writing.

const successPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Login complete</title></head>
<body style="font-family: sans-serif; text-align: center; padding-top: 4em;">
<h1>Login complete</h1>
<p>You can close this window and return to the application.</p>
<script>window.close();</script>
</body>
</html>`

var failurePage = template.Must(template.New("failure").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Login failed</title></head>
<body style="font-family: sans-serif; text-align: center; padding-top: 4em;">
<h1>Login failed</h1>
<p>{{.}}</p>
<p>Close this window and try again from the application.</p>
</body>
</html>`))

const notFoundPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Not found</title></head>
<body><p>Not found.</p></body>
</html>`
