package model

// Alert is a price-drop notification record.
type Alert struct {
	BaseEntity `bson:",inline"`

	ProductID     Flex `json:"product_id" bson:"product_id,omitempty"`
	UserID        Flex `json:"user_id" bson:"user_id,omitempty"`
	AlertType     Flex `json:"alert_type" bson:"alert_type,omitempty"`
	TriggerPrice  Flex `json:"trigger_price" bson:"trigger_price,omitempty"`
	PreviousPrice Flex `json:"previous_price" bson:"previous_price,omitempty"`
	Message       Flex `json:"message" bson:"message,omitempty"`
	EmailSent     Flex `json:"email_sent" bson:"email_sent,omitempty"`
	SmsSent       Flex `json:"sms_sent" bson:"sms_sent,omitempty"`
	SentAt        Flex `json:"sent_at" bson:"sent_at,omitempty"`
}

// Retailer is a store the price tracker knows how to scrape.
type Retailer struct {
	BaseEntity `bson:",inline"`

	Name               Flex `json:"name" bson:"name,omitempty"`
	Label              Flex `json:"label" bson:"label,omitempty"`
	PriceGuaranteeDays Flex `json:"price_guarantee_days" bson:"price_guarantee_days,omitempty"`
}

// Review is a user-submitted product review.
type Review struct {
	BaseEntity `bson:",inline"`

	Title        Flex `json:"title" bson:"title,omitempty"`
	Content      Flex `json:"content" bson:"content,omitempty"`
	Rating       Flex `json:"rating" bson:"rating,omitempty"`
	UserName     Flex `json:"user_name" bson:"user_name,omitempty"`
	UserLocation Flex `json:"user_location" bson:"user_location,omitempty"`
	IsVerified   Flex `json:"is_verified" bson:"is_verified,omitempty"`
	HelpfulCount Flex `json:"helpful_count" bson:"helpful_count,omitempty"`
}

// PriceHistory is one observed price point for a product.
type PriceHistory struct {
	BaseEntity `bson:",inline"`

	ProductID        Flex `json:"product_id" bson:"product_id,omitempty"`
	Price            Flex `json:"price" bson:"price,omitempty"`
	Date             Flex `json:"date" bson:"date,omitempty"`
	ChangePercentage Flex `json:"change_percentage" bson:"change_percentage,omitempty"`
}

// PriceCache is the last scrape result for a product URL.
type PriceCache struct {
	BaseEntity `bson:",inline"`

	URL                Flex `json:"url" bson:"url,omitempty"`
	Price              Flex `json:"price" bson:"price,omitempty"`
	OriginalPrice      Flex `json:"original_price" bson:"original_price,omitempty"`
	DiscountAmount     Flex `json:"discount_amount" bson:"discount_amount,omitempty"`
	CalculationDetails Flex `json:"calculation_details" bson:"calculation_details,omitempty"`
	ProductNameFound   Flex `json:"product_name_found" bson:"product_name_found,omitempty"`
	LastChecked        Flex `json:"last_checked" bson:"last_checked,omitempty"`
}
