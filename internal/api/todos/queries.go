package todos

import (
	"compliance-app/internal/domain/todos"

	"gorm.io/gorm"
)

// userTodoItems selects a user's to-dos joined with the property display
// fields, newest first.
func userTodoItems(db *gorm.DB, userID uint) ([]todos.Item, error) {
	var items []todos.Item
	err := db.Table("todos").
		Select(`todos.id, todos.property_id, todos.title, todos.description,
			todos.priority, todos.status, todos.due_date, todos.assignee, todos.created_at,
			properties.address AS property_address,
			properties.city AS property_city,
			properties.property_type AS property_type`).
		Joins("JOIN properties ON properties.id = todos.property_id").
		Where("todos.user_id = ?", userID).
		Order("todos.created_at DESC").
		Scan(&items).Error
	if items == nil {
		items = []todos.Item{}
	}
	return items, err
}

func userTodoQuery(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&todos.Todo{}).Where("user_id = ?", userID)
}

func userOwnsProperty(db *gorm.DB, userID uint, propertyID uint) (bool, error) {
	var n int64
	err := db.Table("properties").
		Where("id = ? AND user_id = ?", propertyID, userID).
		Count(&n).Error
	return n > 0, err
}
