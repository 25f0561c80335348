// Package permissions evaluates whether a principal may perform an action on
// a trip. It is a pure function of facts the caller supplies: the caller
// gathers membership and ownership from the store, never this package.
package permissions

type Decision int

const (
	Allowed Decision = iota
	Forbidden
	NotFound
)

func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not found"
	}
	return "unknown"
}

// ResourceKind distinguishes resources where mutation is author-only from the
// collaborative kinds any member may edit.
type ResourceKind string

const (
	KindExpense   ResourceKind = "expense"
	KindDocument  ResourceKind = "document"
	KindItinerary ResourceKind = "itinerary"
	KindTodo      ResourceKind = "todo"
)

// collaborative reports whether any member may mutate the kind regardless of
// author. Itinerary items and todos are shared planning artifacts.
func collaborative(kind ResourceKind) bool {
	return kind == KindItinerary || kind == KindTodo
}

// CanManageTrip gates owner-only actions: trip update/delete and removing
// arbitrary participants.
func CanManageTrip(actorID, tripOwnerID int) Decision {
	if actorID == tripOwnerID {
		return Allowed
	}
	return Forbidden
}

// CanActAsMember gates member-level actions: creating expenses, inviting,
// viewing trip data. Non-members get NotFound rather than Forbidden so the
// trip's existence is not leaked.
func CanActAsMember(isMember bool) Decision {
	if isMember {
		return Allowed
	}
	return NotFound
}

// CanMutateResource decides edit/delete on a resource inside a trip.
// Precedence: trip owner override (documents only), collaborative kinds open
// to every member, otherwise author-only.
func CanMutateResource(kind ResourceKind, actorID, resourceOwnerID, tripOwnerID int, actorIsMember bool) Decision {
	if !actorIsMember {
		return NotFound
	}
	if actorID == tripOwnerID && kind == KindDocument {
		return Allowed
	}
	if collaborative(kind) {
		return Allowed
	}
	if actorID == resourceOwnerID {
		return Allowed
	}
	return Forbidden
}

// CanRemoveMember decides the owner-driven removal path. The owner's own
// membership is never removable, for any actor including the owner.
func CanRemoveMember(actorID, targetID, tripOwnerID int, targetIsMember bool) Decision {
	if targetID == tripOwnerID {
		return Forbidden
	}
	if actorID != tripOwnerID {
		return Forbidden
	}
	if !targetIsMember {
		return NotFound
	}
	return Allowed
}

// CanLeave decides self-removal. The owner has no leave path and must
// transfer ownership first, which is rejected here rather than silently
// accepted.
func CanLeave(actorID, tripOwnerID int, actorIsMember bool) Decision {
	if actorID == tripOwnerID {
		return Forbidden
	}
	if !actorIsMember {
		return NotFound
	}
	return Allowed
}
