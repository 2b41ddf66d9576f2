package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrandKey(t *testing.T) {
	req := ContentRequest{BusinessName: "Luigi's Pizza", BusinessCategory: "restaurant"}
	assert.Equal(t, "Luigi's Pizza", req.BrandKey())

	// A nameless request still tracks per category.
	req.BusinessName = ""
	assert.Equal(t, "restaurant", req.BrandKey())
}
