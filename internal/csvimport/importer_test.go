package csvimport

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangeeth-21/velkani-admin/internal/domain/catalog"
	"github.com/sangeeth-21/velkani-admin/internal/upstream"
)

type fakeAPI struct {
	created    []upstream.NewProduct
	failOnName string
}

func (f *fakeAPI) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	return []catalog.Category{
		{ID: "c1", Name: "Groceries"},
		{ID: "c2", Name: "Snacks"},
	}, nil
}

func (f *fakeAPI) ListAllSubcategories(ctx context.Context) ([]catalog.Subcategory, error) {
	return []catalog.Subcategory{
		{ID: "s1", CategoryID: "c1", Name: "Pulses"},
		{ID: "s2", CategoryID: "c2", Name: "Chips"},
	}, nil
}

func (f *fakeAPI) AddProduct(ctx context.Context, p upstream.NewProduct) error {
	if f.failOnName != "" && p.Name == f.failOnName {
		return &upstream.APIError{Message: "duplicate product"}
	}
	f.created = append(f.created, p)
	return nil
}

const header = "name,description,category,subcategory,price,imageUrl,pricePoints\n"

func TestImportHappyPath(t *testing.T) {
	api := &fakeAPI{}
	im := NewImporter(api)

	res, err := im.Import(context.Background(),
		header+
			`Toor Dal,Best dal,groceries,PULSES,80,http://img/dal.jpg,`+"\n"+
			`Moong Dal,,Groceries,Pulses,,,"[{""quantity"": 1, ""price"": 60}, {""quantity"": ""2"", ""price"": 110}]"`+"\n")
	require.NoError(t, err)

	assert.Equal(t, 2, res.Imported)
	assert.Zero(t, res.Failed)
	assert.NotEmpty(t, res.BatchID)
	require.Len(t, api.created, 2)

	first := api.created[0]
	assert.Equal(t, "c1", first.CategoryID)
	assert.Equal(t, "s1", first.SubcategoryID)
	require.Len(t, first.Images, 1)
	require.Len(t, first.PricePoints, 1)
	assert.Equal(t, 80.0, first.PricePoints[0].Price)
	assert.Equal(t, 80.0, first.PricePoints[0].MRP)

	second := api.created[1]
	require.Len(t, second.PricePoints, 2)
	assert.Equal(t, "1", second.PricePoints[0].Quantity)
	assert.Equal(t, 60.0, second.PricePoints[0].Price)
	assert.Equal(t, "2", second.PricePoints[1].Quantity)
	assert.Equal(t, 110.0, second.PricePoints[1].Price)
}

func TestImportKeepsLabelQuantities(t *testing.T) {
	api := &fakeAPI{}
	im := NewImporter(api)

	res, err := im.Import(context.Background(),
		header+
			`Toor Dal,,Groceries,Pulses,,,"[{""quantity"": ""1kg"", ""price"": 60}, {""quantity"": ""500g"", ""price"": 32}]"`+"\n")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Imported)
	assert.Zero(t, res.Failed)
	require.Len(t, api.created, 1)
	points := api.created[0].PricePoints
	require.Len(t, points, 2)
	assert.Equal(t, "1kg", points[0].Quantity)
	assert.Equal(t, "500g", points[1].Quantity)
}

func TestImportBadRowsDoNotAbortBatch(t *testing.T) {
	api := &fakeAPI{}
	im := NewImporter(api)

	res, err := im.Import(context.Background(),
		header+
			`Good One,,Groceries,Pulses,40,,`+"\n"+
			`Bad Json,,Groceries,Pulses,,,"[{""quantity"": }"`+"\n"+
			`No Category,,Hardware,Pulses,40,,`+"\n"+
			`Also Good,,Snacks,Chips,25,,`+"\n")
	require.NoError(t, err)

	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 2, res.Failed)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, 3, res.Errors[0].Line)
	assert.Contains(t, res.Errors[0].Reason, "pricepoints")
	assert.Equal(t, 4, res.Errors[1].Line)
	assert.Contains(t, res.Errors[1].Reason, "unknown category")
	require.Len(t, api.created, 2)
}

func TestImportCountsUpstreamRejections(t *testing.T) {
	api := &fakeAPI{failOnName: "Dup"}
	im := NewImporter(api)

	res, err := im.Import(context.Background(),
		header+
			`Dup,,Groceries,Pulses,40,,`+"\n"+
			`Fresh,,Groceries,Pulses,40,,`+"\n")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Reason, "duplicate product")
}

func TestImportRejectsMissingFields(t *testing.T) {
	api := &fakeAPI{}
	im := NewImporter(api)

	res, err := im.Import(context.Background(),
		header+
			`,,Groceries,Pulses,40,,`+"\n"+
			`Dal,,Groceries,Pulses,not-a-number,,`+"\n")
	require.NoError(t, err)

	assert.Zero(t, res.Imported)
	assert.Equal(t, 2, res.Failed)
}

func TestImportTooShortIsFatal(t *testing.T) {
	im := NewImporter(&fakeAPI{})
	_, err := im.Import(context.Background(), header)
	assert.True(t, errors.Is(err, ErrTooShort))
}
