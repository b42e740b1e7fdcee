package tables

import (
	"time"

	"github.com/google/uuid"
)

// PlanReference points to a plan of another product
type PlanReference struct {
	ProductURL string `json:"product_url" yaml:"product_url"`
	Plan       string `json:"plan"        yaml:"plan"`
}

// PlanColumn is a plan of a product
type PlanColumn struct {
	Name         string                 `json:"name"`
	Title        string                 `json:"title"`
	BillingModel map[string]interface{} `json:"billing-model,omitempty"`
	SupersededBy *PlanReference         `json:"superseded-by,omitempty"`
}

// ProductTable represents the products table
type ProductTable struct {
	ID        uuid.UUID            `db:"id"`
	Title     string               `db:"title"`
	Version   string               `db:"version"`
	URL       string               `db:"apic_url"`
	Image     *string              `db:"image"`
	Published bool                 `db:"published"`
	Plans     JSONList[PlanColumn] `db:"plans"`
	Data      string               `db:"product_data"`
	CreatedAt time.Time            `db:"created_at"`
	UpdatedAt *time.Time           `db:"updated_at"`
}
