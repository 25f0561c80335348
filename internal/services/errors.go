package services

import "tripmate/pkg/apperr"

var (
	// ErrTripNotFound doubles as the generic denial for non-members on read
	// paths, so a trip's existence is not leaked to outsiders.
	ErrTripNotFound = apperr.New(apperr.ErrNotFound, "trip not found")
	ErrNotOwner     = apperr.New(apperr.ErrForbidden, "forbidden: not trip owner")

	ErrInviteNotFound    = apperr.New(apperr.ErrNotFound, "invite token invalid or already used")
	ErrInviteExpired     = apperr.New(apperr.ErrExpired, "invitation has expired, ask the trip for a new invite")
	ErrInviteNotPending  = apperr.New(apperr.ErrConflict, "cannot resend a non-pending invitation")
	ErrEmailMismatch     = apperr.New(apperr.ErrForbidden, "this invitation was issued to a different email address")
	ErrAlreadyInvited    = apperr.New(apperr.ErrConflict, "this email already has a pending invitation, use resend instead")
	ErrAlreadyMember     = apperr.New(apperr.ErrConflict, "user is already a member of this trip")
	ErrInvalidEmail      = apperr.New(apperr.ErrInvalid, "invalid email address")
	ErrInviteEmailFailed = apperr.New(apperr.ErrConflict, "invite created but the email could not be delivered, share the link manually")

	ErrExpenseNotFound  = apperr.New(apperr.ErrNotFound, "expense not found")
	ErrNotExpenseAuthor = apperr.New(apperr.ErrForbidden, "only the member who recorded this expense can modify it")

	ErrOwnerImmovable   = apperr.New(apperr.ErrForbidden, "the trip owner cannot be removed")
	ErrOwnerCannotLeave = apperr.New(apperr.ErrForbidden, "trip owners cannot leave. Transfer ownership or delete the trip.")
)
