package appErrors

import "fmt"

// ErrCampaignNotFound is a sentinel error
type ErrCampaignNotFound struct {
	CampaignID string
}

func (e *ErrCampaignNotFound) Error() string {
	return fmt.Sprintf("campaign with ID %s not found", e.CampaignID)
}

// Helper constructor
func NewCampaignNotFound(id string) error {
	return &ErrCampaignNotFound{CampaignID: id}
}

type ErrProductNotFound struct {
	ProductID string
}

func (e *ErrProductNotFound) Error() string {
	return fmt.Sprintf("product with ID %s not found", e.ProductID)
}

func NewProductNotFound(id string) error {
	return &ErrProductNotFound{ProductID: id}
}

type ErrCreatorNotFound struct {
	CreatorID string
}

func (e *ErrCreatorNotFound) Error() string {
	return fmt.Sprintf("creator with ID %s not found", e.CreatorID)
}

func NewCreatorNotFound(id string) error {
	return &ErrCreatorNotFound{CreatorID: id}
}

type ErrTextNotFound struct {
	TextID string
}

func (e *ErrTextNotFound) Error() string {
	return fmt.Sprintf("admin text with ID %s not found", e.TextID)
}

func NewTextNotFound(id string) error {
	return &ErrTextNotFound{TextID: id}
}
