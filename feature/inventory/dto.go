package inventory

import (
	inv "inventory-control/core/inventory"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ScanRequest submits one complete code, as typed in the manual entry field.
type ScanRequest struct {
	Code string `json:"code" validate:"required,max=128"`
}

// KeyRequest submits one keystroke from a keyboard-wedge scanner.
type KeyRequest struct {
	Key string `json:"key" validate:"required,max=16"`
}

// CreateRecordRequest adds a manually counted record.
type CreateRecordRequest struct {
	Code string `json:"code" validate:"required,max=128"`
	Name string `json:"name" validate:"max=256"`
	Qty  int    `json:"qty" validate:"gte=0"`
}

// Record converts the request into a real record.
func (r CreateRecordRequest) Record() inv.RealRecord {
	return inv.RealRecord{Code: r.Code, Name: r.Name, Qty: r.Qty}
}

// UpdateRecordRequest edits a real record. Omitted fields are left untouched.
type UpdateRecordRequest struct {
	Name *string `json:"name" validate:"omitempty,max=256"`
	Qty  *int    `json:"qty" validate:"omitempty,gte=0"`
}

// Update converts the request into a record update.
func (r UpdateRecordRequest) Update() inv.RecordUpdate {
	return inv.RecordUpdate{Name: r.Name, Qty: r.Qty}
}

// bindAndValidate parses the JSON body into req and validates it. On failure it
// writes the error response and returns false.
func bindAndValidate(c *fiber.Ctx, req any) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON: " + err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
		}
		return false, c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": fields,
		})
	}
	return true, nil
}
