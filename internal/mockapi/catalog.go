package mockapi

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/Vladislav970/weblarek/internal/model"
)

var categories = []string{
	"софт-скил",
	"хард-скил",
	"другое",
	"дополнительное",
	"кнопка",
}

// GenerateProducts builds a fake catalog. The same seed always yields
// the same catalog, which keeps manual testing repeatable. Roughly one
// item in five is priceless.
func GenerateProducts(n int, seed uint64) []model.Product {
	faker := gofakeit.New(seed)

	items := make([]model.Product, 0, n)
	for i := 0; i < n; i++ {
		title := faker.ProductName()

		var price *decimal.Decimal
		if faker.Number(1, 5) > 1 {
			v := decimal.NewFromInt(int64(faker.Number(1, 300)) * 25)
			price = &v
		}

		items = append(items, model.Product{
			ID:          faker.UUID(),
			Title:       title,
			Description: faker.Sentence(12),
			Image:       imagePath(title),
			Category:    categories[faker.Number(0, len(categories)-1)],
			Price:       price,
		})
	}
	return items
}

func imagePath(title string) string {
	slug := strings.ReplaceAll(strings.ToLower(title), " ", "-")
	return fmt.Sprintf("/%s.svg", slug)
}
