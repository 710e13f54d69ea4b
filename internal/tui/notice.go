// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-pet-storefront/internal/service"

// notice is the single message slot of a page: setting an error replaces a
// success message and the other way round.
type notice struct {
	text    string
	isError bool
}

func errorNotice(err error) notice {
	return notice{text: service.UserMessage(err), isError: true}
}

func successNotice(text string) notice {
	return notice{text: text}
}

func (n notice) empty() bool {
	return n.text == ""
}

func (n notice) view() string {
	switch {
	case n.text == "":
		return ""
	case n.isError:
		return errorStyle.Render("Error: " + n.text)
	default:
		return successStyle.Render(n.text)
	}
}
