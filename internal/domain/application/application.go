package application

import (
	"context"
	"errors"
	"time"

	"github.com/stafftrack/timeclock-backend-go/internal/domain/access"
)

// Application is a registered OAuth client. These records are
// administered out-of-band; the API exposes them read-only so clients
// can discover their own registration.
type Application struct {
	ID          string
	Name        string
	ClientID    string
	RedirectURI string
	GrantType   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var ErrApplicationNotFound = errors.New("application not found")

// CanAccess allows safe methods only; every mutation is denied.
func CanAccess(action access.Action) error {
	if action.IsSafe() {
		return nil
	}
	return access.Deny("applications are read-only")
}

type Repository interface {
	GetByID(ctx context.Context, id string) (Application, error)
	List(ctx context.Context, filter Filter) ([]Application, int64, error)
}

type Filter struct {
	Name  *string
	Page  int
	Limit int
}

type ApplicationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ClientID    string `json:"client_id"`
	RedirectURI string `json:"redirect_uri"`
	GrantType   string `json:"grant_type"`
}

func ToResponse(a Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		Name:        a.Name,
		ClientID:    a.ClientID,
		RedirectURI: a.RedirectURI,
		GrantType:   a.GrantType,
	}
}
