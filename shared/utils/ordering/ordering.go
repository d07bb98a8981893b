// Package ordering manages sibling order columns for pages and sections.
//
// Appends leave a gap of 10 between siblings so rows can be inserted
// without renumbering. Reorders shift only the window between the old
// and new position. Deletes close the gap left behind.
package ordering

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scope names the sibling set an operation works on: rows of Model
// whose ParentColumn equals ParentID. OrderColumn is the raw column
// name of the order field.
type Scope struct {
	Model        interface{}
	ParentColumn string
	OrderColumn  string
	ParentID     uuid.UUID
}

func (s Scope) siblings(db *gorm.DB) *gorm.DB {
	return db.Model(s.Model).
		Where(fmt.Sprintf("%s = ?", s.ParentColumn), s.ParentID).
		Where("is_deleted = ?", false)
}

// NextOrder returns the append position: last sibling order + 10, or 10
// when the scope is empty.
func NextOrder(db *gorm.DB, s Scope) (int, error) {
	var count int64
	if err := s.siblings(db).Count(&count).Error; err != nil {
		return 0, err
	}
	if count == 0 {
		return 10, nil
	}

	var lastOrder int
	err := s.siblings(db).
		Select(fmt.Sprintf("MAX(%s)", s.OrderColumn)).
		Scan(&lastOrder).Error
	if err != nil {
		return 0, err
	}

	return lastOrder + 10, nil
}

// ShiftDelta returns the increment applied to a sibling at order when
// the moved row travels from oldOrder to newOrder. Zero means the
// sibling is outside the shift window.
func ShiftDelta(order, oldOrder, newOrder int) int {
	switch {
	case newOrder > oldOrder && order > oldOrder && order <= newOrder:
		return -1
	case newOrder < oldOrder && order >= newOrder && order < oldOrder:
		return 1
	default:
		return 0
	}
}

// ShiftWindow moves the row movedID to newOrder and shifts the siblings
// inside the affected window by one.
func ShiftWindow(db *gorm.DB, s Scope, movedID uuid.UUID, oldOrder, newOrder int) error {
	if err := db.Model(s.Model).
		Where("id = ?", movedID).
		Update(s.OrderColumn, newOrder).Error; err != nil {
		return err
	}

	if newOrder > oldOrder {
		// Moving down: decrement orders between old and new position
		return s.siblings(db).
			Where(fmt.Sprintf("%s > ? AND %s <= ?", s.OrderColumn, s.OrderColumn), oldOrder, newOrder).
			Where("id <> ?", movedID).
			Update(s.OrderColumn, gorm.Expr(fmt.Sprintf("%s - 1", s.OrderColumn))).Error
	}

	if newOrder < oldOrder {
		// Moving up: increment orders between new and old position
		return s.siblings(db).
			Where(fmt.Sprintf("%s >= ? AND %s < ?", s.OrderColumn, s.OrderColumn), newOrder, oldOrder).
			Where("id <> ?", movedID).
			Update(s.OrderColumn, gorm.Expr(fmt.Sprintf("%s + 1", s.OrderColumn))).Error
	}

	return nil
}

// CompactAfter closes the gap left by a removed row: every sibling
// ordered after deletedOrder moves up by one.
func CompactAfter(db *gorm.DB, s Scope, deletedOrder int) error {
	return s.siblings(db).
		Where(fmt.Sprintf("%s > ?", s.OrderColumn), deletedOrder).
		Update(s.OrderColumn, gorm.Expr(fmt.Sprintf("%s - 1", s.OrderColumn))).Error
}

// PageScope builds the scope for pages of a website
func PageScope(model interface{}, websiteID uuid.UUID) Scope {
	return Scope{
		Model:        model,
		ParentColumn: "website_id",
		OrderColumn:  "page_order",
		ParentID:     websiteID,
	}
}

// SectionScope builds the scope for sections of a page
func SectionScope(model interface{}, webpageID uuid.UUID) Scope {
	return Scope{
		Model:        model,
		ParentColumn: "webpage_id",
		OrderColumn:  "section_order",
		ParentID:     webpageID,
	}
}
