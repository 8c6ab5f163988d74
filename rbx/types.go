package rbx

import "strconv"

// ------------------------------
// Identifier newtypes
// ------------------------------

// UniverseID identifies a Roblox experience (universe).
type UniverseID uint64

// PlaceID identifies a specific place within a universe.
type PlaceID uint64

// UserID identifies a Roblox user.
type UserID uint64

// GroupID identifies a Roblox group.
type GroupID uint64

// PageSize is the maximum number of items returned per page by the
// cloud/v2 list endpoints.
type PageSize uint32

// ReturnLimit is the maximum number of items returned by the v1
// DataStore list endpoints.
type ReturnLimit uint64

// Identifiers render as their plain decimal form wherever they are
// interpolated into a URL path segment or query value. The service, not
// the client, rejects out-of-range or nonexistent IDs.

func (id UniverseID) String() string { return strconv.FormatUint(uint64(id), 10) }

func (id PlaceID) String() string { return strconv.FormatUint(uint64(id), 10) }

func (id UserID) String() string { return strconv.FormatUint(uint64(id), 10) }

func (id GroupID) String() string { return strconv.FormatUint(uint64(id), 10) }

func (s PageSize) String() string { return strconv.FormatUint(uint64(s), 10) }

func (l ReturnLimit) String() string { return strconv.FormatUint(uint64(l), 10) }
