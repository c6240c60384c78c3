package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/fragmede/eventengine/internal/forms"
	"github.com/fragmede/eventengine/internal/ui/messages"
)

// flagFields serves form inputs from parsed command-line flags.
type flagFields map[string]*string

func (f flagFields) Value(id string) string {
	if v, ok := f[id]; ok && v != nil {
		return *v
	}
	return ""
}

// printSink is a message element that prints its final text. Outcomes that
// display nothing print nothing.
type printSink struct {
	text    string
	written bool
}

func (s *printSink) SetText(text string) {
	s.text = text
	s.written = true
}

func (s *printSink) flush(w io.Writer) {
	if s.written {
		fmt.Fprintln(w, s.text)
	}
}

func runLogin(ctx context.Context, client forms.Poster, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fields := flagFields{
		forms.FieldUsername: fs.String("username", "", "Email to log in with"),
		forms.FieldPassword: fs.String("password", "", "Password"),
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}

	sink := &printSink{}
	forms.NewLoginSubmitHandler(client, fields, sink).Handle(ctx, forms.NewSubmitEvent(messages.LoginForm))
	sink.flush(stdout)
	return 0
}

func runRegister(ctx context.Context, client forms.Poster, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fields := flagFields{
		forms.FieldImie:     fs.String("imie", "", "First name"),
		forms.FieldNazwisko: fs.String("nazwisko", "", "Last name"),
		forms.FieldKlasa:    fs.String("klasa", "", "Class or group"),
		forms.FieldEmail:    fs.String("email", "", "Email"),
		forms.FieldPassword: fs.String("password", "", "Password"),
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}

	sink := &printSink{}
	forms.NewRegisterSubmitHandler(client, fields, sink).Handle(ctx, forms.NewSubmitEvent(messages.RegisterForm))
	sink.flush(stdout)
	return 0
}
