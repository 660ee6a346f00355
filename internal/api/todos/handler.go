package todos

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"compliance-app/database"
	"compliance-app/internal/domain/todos"

	"github.com/gin-gonic/gin"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// ------------------------------
// GET /todos?search=&status=&priority=
// ------------------------------
func ListTodos(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	items, err := userTodoItems(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load todos"})
		return
	}

	items = todos.Filter(items,
		c.Query("search"),
		c.DefaultQuery("status", todos.FilterAll),
		c.DefaultQuery("priority", todos.FilterAll),
	)

	c.JSON(http.StatusOK, items)
}

// ------------------------------
// GET /todos/dashboard
// ------------------------------
func Dashboard(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	items, err := userTodoItems(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load todos"})
		return
	}

	c.JSON(http.StatusOK, todos.CountByStatus(items, time.Now()))
}

// ------------------------------
// POST /todos
// ------------------------------
func CreateTodo(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Validation happens before any write: no title or no property means no
	// remote call at all.
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}
	if req.PropertyID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Property is required"})
		return
	}
	if req.Priority == "" {
		req.Priority = todos.PriorityMedium
	}
	if !todos.ValidPriority(req.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}

	var dueDate *time.Time
	if strings.TrimSpace(req.DueDate) != "" {
		d, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due date, expected YYYY-MM-DD"})
			return
		}
		dueDate = &d
	}

	owns, err := userOwnsProperty(database.DB, userID, req.PropertyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check property"})
		return
	}
	if !owns {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	t := todos.Todo{
		UserID:      userID,
		PropertyID:  req.PropertyID,
		Title:       req.Title,
		Description: nilIfBlank(req.Description),
		Priority:    req.Priority,
		Status:      todos.StatusPending, // always starts pending
		DueDate:     dueDate,
		Assignee:    nilIfBlank(req.Assignee),
	}

	if err := database.DB.Create(&t).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create todo"})
		return
	}

	c.JSON(http.StatusCreated, t)
}

// ------------------------------
// POST /properties/:id/todos/quick-generate
// ------------------------------
func QuickGenerate(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	propertyID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return
	}

	owns, err := userOwnsProperty(database.DB, userID, propertyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check property"})
		return
	}
	if !owns {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	batch := todos.QuickChecklist(userID, propertyID, time.Now())
	if err := database.DB.Create(&batch).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate checklist"})
		return
	}

	c.JSON(http.StatusCreated, batch)
}

// ------------------------------
// PUT /todos/:id/status
// ------------------------------
func SetStatus(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !todos.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	// Any status may follow any other, including re-opening a completed
	// item. Permissive on purpose.
	tx := userTodoQuery(database.DB, userID).
		Where("id = ?", id).
		Update("status", req.Status)
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}
	if tx.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /todos/:id
// ------------------------------
func DeleteTodo(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	tx := database.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&todos.Todo{})
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo"})
		return
	}
	if tx.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

func nilIfBlank(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
