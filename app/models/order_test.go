package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantityLenientDecoding(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int64
	}{
		{"integer", `3`, 3},
		{"float truncates", `2.7`, 2},
		{"numeric string", `"4"`, 4},
		{"null", `null`, 0},
		{"garbage string", `"many"`, 0},
		{"object", `{"n":1}`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var q Quantity
			require.NoError(t, json.Unmarshal([]byte(tc.in), &q))
			assert.Equal(t, Quantity(tc.want), q)
		})
	}
}

func TestLineItemMissingQuantityIsZero(t *testing.T) {
	var item LineItem
	require.NoError(t, json.Unmarshal([]byte(`{"product_id": 7}`), &item))
	assert.Equal(t, uint(7), item.ProductID)
	assert.Equal(t, Quantity(0), item.Quantity)
}

func TestLineItemPreservesExtraFields(t *testing.T) {
	in := `{"product_id": 3, "quantity": 2, "name": "Curry Rice", "price": 750}`

	var item LineItem
	require.NoError(t, json.Unmarshal([]byte(in), &item))

	name, ok := item.Extra("name")
	require.True(t, ok)
	assert.JSONEq(t, `"Curry Rice"`, string(name))

	out, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestLineItemStringProductID(t *testing.T) {
	var item LineItem
	require.NoError(t, json.Unmarshal([]byte(`{"product_id": "12", "quantity": 1}`), &item))
	assert.Equal(t, uint(12), item.ProductID)
}

func TestLineItemsScanRoundTrip(t *testing.T) {
	items := LineItems{NewLineItem(1, 2), NewLineItem(5, 1)}

	value, err := items.Value()
	require.NoError(t, err)

	var decoded LineItems
	require.NoError(t, decoded.Scan(value))
	require.Len(t, decoded, 2)
	assert.Equal(t, uint(1), decoded[0].ProductID)
	assert.Equal(t, Quantity(2), decoded[0].Quantity)
	assert.Equal(t, uint(5), decoded[1].ProductID)
}

func TestLineItemsScanNil(t *testing.T) {
	var items LineItems
	require.NoError(t, items.Scan(nil))
	assert.Nil(t, items)
}

func TestProductPriceOrZero(t *testing.T) {
	var p Product
	assert.True(t, p.PriceOrZero().IsZero())
}
