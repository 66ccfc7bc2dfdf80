package models

// ItemPayload is the wire shape of an item. Categories are flattened to
// their names.
type ItemPayload struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       float64  `json:"price"`
	Categories  []string `json:"categories"`
}

// CategoryPayload is the wire shape of a category with fully nested items.
type CategoryPayload struct {
	ID    uint          `json:"id"`
	Name  string        `json:"name"`
	Items []ItemPayload `json:"items"`
}

// NewItemPayload shapes an item whose Categories association is already
// loaded; relationship fetches stay explicit at the call sites.
func NewItemPayload(item Item) ItemPayload {
	names := make([]string, 0, len(item.Categories))
	for _, category := range item.Categories {
		names = append(names, category.Name)
	}
	return ItemPayload{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Categories:  names,
	}
}

// NewCategoryPayload shapes a category. Each nested item must carry its own
// loaded Categories so its name list is complete.
func NewCategoryPayload(category Category) CategoryPayload {
	items := make([]ItemPayload, 0, len(category.Items))
	for _, item := range category.Items {
		items = append(items, NewItemPayload(item))
	}
	return CategoryPayload{
		ID:    category.ID,
		Name:  category.Name,
		Items: items,
	}
}
