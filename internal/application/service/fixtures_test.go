package service

import (
	"io"
	"strings"

	"github.com/tallersur/pedidos-api/internal/domain/entity"
	"github.com/tallersur/pedidos-api/internal/domain/repository"
	"github.com/tallersur/pedidos-api/pkg/pagination"
)

func newProduct(name, material string, price int64, perMeter bool) *entity.Product {
	return &entity.Product{
		Name:     name,
		Material: material,
		Price:    price,
		PerMeter: perMeter,
	}
}

func newMeterPrice(material string, price int64) entity.MeterPrice {
	return entity.MeterPrice{Material: material, Price: price}
}

func payloadReader(s string) io.Reader {
	return strings.NewReader(s)
}

func defaultListParams() *repository.OrderFilterParams {
	return &repository.OrderFilterParams{Pagination: pagination.DefaultPagination()}
}
