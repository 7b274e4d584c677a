package request

// LabelRequest names the product content for a label preview or print.
// Price is a decimal; absent fields fall back to the sample content.
type LabelRequest struct {
	Name  string  `json:"name" binding:"required"`
	SKU   string  `json:"sku"`
	Price float64 `json:"price"`
}
