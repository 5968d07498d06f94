package model

// Product is a tracked item. Prices, flags and dates are Flex on purpose:
// the migrated sources disagree on their native types.
type Product struct {
	BaseEntity `bson:",inline"`

	Name                  Flex `json:"name" bson:"name,omitempty"`
	URL                   Flex `json:"url" bson:"url,omitempty"`
	Retailer              Flex `json:"retailer" bson:"retailer,omitempty"`
	PurchasedDate         Flex `json:"purchased_date" bson:"purchased_date,omitempty"`
	CurrentPrice          Flex `json:"current_price" bson:"current_price,omitempty"`
	OriginalPrice         Flex `json:"original_price" bson:"original_price,omitempty"`
	TargetPrice           Flex `json:"target_price" bson:"target_price,omitempty"`
	TargetPriceType       Flex `json:"target_price_type" bson:"target_price_type,omitempty"`
	TargetPricePercentage Flex `json:"target_price_percentage" bson:"target_price_percentage,omitempty"`
	ImageURL              Flex `json:"image_url" bson:"image_url,omitempty"`
	Category              Flex `json:"category" bson:"category,omitempty"`
	IsActive              Flex `json:"is_active" bson:"is_active,omitempty"`
	Deleted               Flex `json:"deleted" bson:"deleted,omitempty"`
	DeletedAt             Flex `json:"deleted_at" bson:"deleted_at,omitempty"`
	LastChecked           Flex `json:"last_checked" bson:"last_checked,omitempty"`
	MemorySize            Flex `json:"memory_size" bson:"memory_size,omitempty"`
	StorageSize           Flex `json:"storage_size" bson:"storage_size,omitempty"`
	ProcessorType         Flex `json:"processor_type" bson:"processor_type,omitempty"`
	ScreenSize            Flex `json:"screen_size" bson:"screen_size,omitempty"`
}

// Active follows the source convention: a product with no is_active value
// at all counts as active.
func (p *Product) Active() bool {
	return p.IsActive == "true" || p.IsActive.IsEmpty()
}
