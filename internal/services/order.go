package services

import (
	"fmt"

	"github.com/proforge/profilepdf/internal/types"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// siblingSort is the display ordering for every sibling group: order
// ascending, creation time descending for ties. Ties are legal transiently;
// reorder is the only operation that writes a dense sequence back.
const siblingSort = "order_index ASC, created_at DESC"

// nextOrder returns max(sibling order)+1, the end-of-list default used when a
// create request omits order.
func nextOrder(tx *gorm.DB, table, parentCol string, parentID uint64) (int, error) {
	var next int
	err := tx.Table(table).
		Where(parentCol+" = ?", parentID).
		Select("COALESCE(MAX(order_index), -1) + 1").
		Scan(&next).Error
	return next, err
}

// reorderRows rewrites order_index to the position each id holds in ids, all
// or nothing. Ids outside the sibling group identified by parentCol/parentID,
// unknown ids and duplicates are rejected before anything is written.
func reorderRows(tx *gorm.DB, table, parentCol string, parentID uint64, ids []uint64) error {
	if len(ids) == 0 {
		return types.ValidationField("ids", "The ids field is required.")
	}

	seen := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return types.ValidationField("ids", fmt.Sprintf("The ids field contains duplicate id %d.", id))
		}
		seen[id] = struct{}{}
	}

	var count int64
	if err := tx.Table(table).
		Where("id IN ?", ids).
		Where(parentCol+" = ?", parentID).
		Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return types.ValidationField("ids", "The ids field references rows outside the target sibling group.")
	}

	for position, id := range ids {
		if err := tx.Table(table).
			Where("id = ?", id).
			Update("order_index", position).Error; err != nil {
			return err
		}
	}

	return nil
}

// withIndexHint forces the sibling-group index on MySQL list queries; other
// dialects do not support the clause and get the query untouched.
func withIndexHint(db *gorm.DB, indexName string) *gorm.DB {
	switch db.Dialector.Name() {
	case "mysql", "mariadb":
		return db.Clauses(hints.UseIndex(indexName))
	}
	return db
}
