package users

import (
	"net/url"
	"strconv"

	"github.com/JaimeStill/docket/pkg/query"
	"github.com/JaimeStill/docket/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "users", "u").
	Project("id", "ID").
	Project("email", "Email").
	Project("display_name", "DisplayName").
	Project("role", "Role").
	Project("active", "Active").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for user queries.
// Nil fields are ignored. Role and Active use exact matching;
// Email and DisplayName use case-insensitive contains matching.
type Filters struct {
	Email       *string `json:"email,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`
	Role        *string `json:"role,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("Email", f.Email).
		WhereContains("DisplayName", f.DisplayName).
		WhereEquals("Role", f.Role).
		WhereEquals("Active", f.Active)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if e := values.Get("email"); e != "" {
		f.Email = &e
	}

	if n := values.Get("display_name"); n != "" {
		f.DisplayName = &n
	}

	if r := values.Get("role"); r != "" {
		f.Role = &r
	}

	if a := values.Get("active"); a != "" {
		if v, err := strconv.ParseBool(a); err == nil {
			f.Active = &v
		}
	}

	return f
}

func scanUser(s repository.Scanner) (User, error) {
	var u User
	err := s.Scan(
		&u.ID,
		&u.Email,
		&u.DisplayName,
		&u.Role,
		&u.Active,
		&u.CreatedAt,
	)
	return u, err
}
