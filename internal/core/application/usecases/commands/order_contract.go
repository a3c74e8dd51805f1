package commands

import (
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"
)

// orderContract is the fixed structural contract for the submitted order
// body. At least one product is required; entries require productId, name,
// an object-valued package, and a non-negative price; quantity is optional
// but must be a positive integer when present. The address is only required
// to be an object: it is forwarded to the delivery service and never
// interpreted here.
var orderContract = buildOrderContract()

func buildOrderContract() *openapi3.Schema {
	productSchema := openapi3.NewObjectSchema().
		WithProperty("productId", openapi3.NewStringSchema()).
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("package", openapi3.NewObjectSchema()).
		WithProperty("price", openapi3.NewFloat64Schema().WithMin(0)).
		WithProperty("quantity", openapi3.NewIntegerSchema().WithMin(1))
	productSchema.Required = []string{"productId", "name", "package", "price"}

	productsSchema := openapi3.NewArraySchema()
	productsSchema.Items = openapi3.NewSchemaRef("", productSchema)
	productsSchema.MinItems = 1

	orderSchema := openapi3.NewObjectSchema().
		WithProperty("products", productsSchema).
		WithProperty("deliveryPrice", openapi3.NewFloat64Schema().WithMin(0)).
		WithProperty("address", openapi3.NewObjectSchema())
	orderSchema.Required = []string{"products", "deliveryPrice", "address"}

	return orderSchema
}

// validateOrderContract checks a raw order body against orderContract.
// Returns the first violation as a single descriptive error.
func validateOrderContract(rawOrder json.RawMessage) error {
	var payload any
	if err := json.Unmarshal(rawOrder, &payload); err != nil {
		return err
	}

	return orderContract.VisitJSON(payload)
}
