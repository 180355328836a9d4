// Package dao implements the usecase stores over MySQL. Uniqueness
// constraints, not read-then-write checks, guard the contended writes:
// the composite key on like_edges and the session-id primary key on
// orders make duplicate requests no-ops at the database.
package dao

import "github.com/Waseemalame/unwokeai/usecase"

var (
	_ usecase.ItemStore  = (*ItemRepository)(nil)
	_ usecase.LikeStore  = (*LikeRepository)(nil)
	_ usecase.OrderStore = (*OrderRepository)(nil)
	_ usecase.UserStore  = (*UserRepository)(nil)
)
