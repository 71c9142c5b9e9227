package dashboard

import (
	"context"

	"github.com/movo/dashboard/internal/domain"
	"github.com/movo/dashboard/internal/profile"
	"github.com/movo/dashboard/internal/repository"
)

// Task is blocking work the caller runs off the event loop. Its Msg must be
// passed back to Controller.Update.
type Task func(ctx context.Context) Msg

// Msg is the result of a Task
type Msg interface {
	dashboardMsg()
}

// ProfileResolved carries a profile fetch result
type ProfileResolved struct {
	Result profile.Result
}

// InvoicesLoaded carries an invoice list fetch result
type InvoicesLoaded struct {
	Result repository.Result
}

// InvoiceSubmitted settles a creation request
type InvoiceSubmitted struct {
	Generation uint64 // session generation the request was issued under
	Ticket     uint64
	Created    domain.CreatedInvoice
	Err        error
}

// ProfileSaved settles a profile save
type ProfileSaved struct {
	Generation uint64
	Profile    *domain.MerchantProfile
	Err        error
}

func (ProfileResolved) dashboardMsg()  {}
func (InvoicesLoaded) dashboardMsg()   {}
func (InvoiceSubmitted) dashboardMsg() {}
func (ProfileSaved) dashboardMsg()     {}
