// Package validate turns loosely-typed request payloads into typed inputs,
// collecting per-field messages. Downstream code only ever sees the typed
// result.
package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/inkpress/backend/internal/model"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidationError carries one message per failed field.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return e.Fields[0]
}

type fieldErrors struct {
	msgs []string
}

func (f *fieldErrors) add(msg string) {
	f.msgs = append(f.msgs, msg)
}

func (f *fieldErrors) err() error {
	if len(f.msgs) == 0 {
		return nil
	}
	return &ValidationError{Fields: f.msgs}
}

type SignupInput struct {
	Fullname string
	Email    string
	Password string
}

func Signup(fullname, email, password string) (SignupInput, error) {
	var fe fieldErrors

	fullname = strings.TrimSpace(fullname)
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)

	checkLength(&fe, fullname, 3, 60, "Fullname")
	if email == "" {
		fe.add("Email is required")
	} else if !emailPattern.MatchString(email) {
		fe.add("Please provide a valid email")
	}
	if password == "" {
		fe.add("Password is required")
	} else if len(password) < 8 {
		fe.add("Password must be at least 8 characters")
	} else if len(password) > 60 {
		fe.add("Password must not exceed 60 characters")
	}

	return SignupInput{Fullname: fullname, Email: email, Password: password}, fe.err()
}

type LoginInput struct {
	Email    string
	Password string
}

func Login(email, password string) (LoginInput, error) {
	var fe fieldErrors

	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)

	if email == "" {
		fe.add("Email is required")
	} else if !emailPattern.MatchString(email) {
		fe.add("Please provide a valid email")
	}
	if password == "" {
		fe.add("Password is required")
	}

	return LoginInput{Email: email, Password: password}, fe.err()
}

type ProfileInput struct {
	Fullname string
}

func Profile(fullname string) (ProfileInput, error) {
	var fe fieldErrors

	fullname = strings.TrimSpace(fullname)
	checkLength(&fe, fullname, 3, 60, "Fullname")

	return ProfileInput{Fullname: fullname}, fe.err()
}

type BlogInput struct {
	Title   string
	Slug    string
	Content string
	Status  string
}

func Blog(title, slug, content, status string) (BlogInput, error) {
	var fe fieldErrors

	title = strings.TrimSpace(title)
	slug = strings.TrimSpace(slug)
	content = strings.TrimSpace(content)
	status = strings.TrimSpace(status)

	checkLength(&fe, title, 3, 60, "Title")
	checkLength(&fe, slug, 3, 70, "Slug")
	checkLength(&fe, content, 3, 8000, "Content")

	switch status {
	case "":
		status = model.StatusInactive
	case model.StatusActive, model.StatusInactive:
	default:
		fe.add("Please select a valid status")
	}

	return BlogInput{Title: title, Slug: slug, Content: content, Status: status}, fe.err()
}

func checkLength(fe *fieldErrors, value string, min, max int, name string) {
	switch {
	case value == "":
		fe.add(name + " is required")
	case len(value) < min:
		fe.add(name + " length not less than " + strconv.Itoa(min) + " characters")
	case len(value) > max:
		fe.add(name + " length must not exceed " + strconv.Itoa(max) + " characters")
	}
}
