// Package auth renders the standalone login screen shown outside the
// authenticated admin shell.
package auth

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"inkwellcms.org/inkwell-admin/internal/admin/i18n"
)

// LoginPage renders the login form document.
func LoginPage(data LoginPageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var err error
		writef := func(format string, args ...any) {
			if err != nil {
				return
			}
			_, err = fmt.Fprintf(w, format, args...)
		}

		title := i18n.T(i18n.DefaultLang, "login.title")

		writef(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		writef(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		writef(`<title>%s | %s</title>`, templ.EscapeString(title), templ.EscapeString(i18n.T(i18n.DefaultLang, "brand.name")))
		writef(`<link rel="stylesheet" href="/public/static/css/admin.css">`)
		writef(`</head><body class="bg-slate-50 text-slate-900"><main class="login">`)
		writef(`<h1 class="login__title">%s</h1>`, templ.EscapeString(title))

		if data.Message != "" {
			writef(`<p class="login__message" role="status">%s</p>`, templ.EscapeString(data.Message))
		}
		if data.Error != "" {
			writef(`<p class="login__error" role="alert">%s</p>`, templ.EscapeString(data.Error))
		}

		writef(`<form class="login__form" method="post" action="%s">`, templ.EscapeString(data.LoginPath))
		writef(`<input type="hidden" name="csrf_token" value="%s">`, templ.EscapeString(data.CSRFToken))
		if data.Next != "" {
			writef(`<input type="hidden" name="next" value="%s">`, templ.EscapeString(data.Next))
		}
		writef(`<label for="email">Email</label>`)
		writef(`<input id="email" name="email" type="email" autocomplete="email" value="%s">`, templ.EscapeString(data.Email))
		writef(`<label for="id_token">ID token</label>`)
		writef(`<input id="id_token" name="id_token" type="password" autocomplete="current-password" required>`)
		checked := ""
		if data.Remember {
			checked = " checked"
		}
		writef(`<label class="login__remember"><input type="checkbox" name="remember" value="1"%s> Remember me</label>`, checked)
		writef(`<button type="submit" class="login__submit">%s</button>`, templ.EscapeString(i18n.T(i18n.DefaultLang, "login.submit")))
		writef(`</form></main></body></html>`)
		return err
	})
}
