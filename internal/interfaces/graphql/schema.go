package graphql

import (
	"time"

	"github.com/graphql-go/graphql"

	appanalytics "github.com/jhoicas/inventory-dashboard/internal/application/analytics"
	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/application/inventory"
	"github.com/jhoicas/inventory-dashboard/internal/application/usecase"
	"github.com/jhoicas/inventory-dashboard/pkg/pagination"
)

// Deps casos de uso que resuelven el esquema.
type Deps struct {
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	KPIUC       *appanalytics.KPIUseCase
	MutationUC  *inventory.MutationUseCase
}

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"sku":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"warehouse": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"stock":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"demand":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"status":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var warehouseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Warehouse",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"location": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var kpiDataPointType = graphql.NewObject(graphql.ObjectConfig{
	Name: "KPIDataPoint",
	Fields: graphql.Fields{
		"date":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"stock":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"demand": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var kpiResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "KPIResponse",
	Fields: graphql.Fields{
		"range":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"totalStock":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"totalDemand": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"fillRate":    &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"trendData":   &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(kpiDataPointType)))},
	},
})

var pageInfoType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PageInfo",
	Fields: graphql.Fields{
		"currentPage":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"totalPages":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"totalItems":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"pageSize":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"startIndex":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"endIndex":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"hasNextPage":     &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"hasPreviousPage": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
	},
})

var productPageType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ProductPage",
	Fields: graphql.Fields{
		"items":    &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(productType)))},
		"pageInfo": &graphql.Field{Type: graphql.NewNonNull(pageInfoType)},
	},
})

var stockMovementType = graphql.NewObject(graphql.ObjectConfig{
	Name: "StockMovement",
	Fields: graphql.Fields{
		"id":             &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"type":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"productId":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"fromWarehouse":  &graphql.Field{Type: graphql.String},
		"toWarehouse":    &graphql.Field{Type: graphql.String},
		"quantity":       &graphql.Field{Type: graphql.Int},
		"previousDemand": &graphql.Field{Type: graphql.Int},
		"newDemand":      &graphql.Field{Type: graphql.Int},
		"createdAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				m, ok := p.Source.(dto.StockMovementResponse)
				if !ok {
					return nil, nil
				}
				return m.CreatedAt.UTC().Format(time.RFC3339), nil
			},
		},
	},
})

var filterArgs = graphql.FieldConfigArgument{
	"search":    &graphql.ArgumentConfig{Type: graphql.String},
	"warehouse": &graphql.ArgumentConfig{Type: graphql.String},
	"status":    &graphql.ArgumentConfig{Type: graphql.String},
}

// NewSchema arma el esquema Query/Mutation sobre los casos de uso.
func NewSchema(deps Deps) (graphql.Schema, error) {
	r := &resolver{deps: deps}

	pageArgs := graphql.FieldConfigArgument{
		"page":     &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 1},
		"pageSize": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: pagination.DefaultPageSize},
	}
	for k, v := range filterArgs {
		pageArgs[k] = v
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(productType))),
				Args:    filterArgs,
				Resolve: r.products,
			},
			"productsPage": &graphql.Field{
				Type:    graphql.NewNonNull(productPageType),
				Args:    pageArgs,
				Resolve: r.productsPage,
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.product,
			},
			"warehouses": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(warehouseType))),
				Resolve: r.warehouses,
			},
			"kpis": &graphql.Field{
				Type: graphql.NewNonNull(kpiResponseType),
				Args: graphql.FieldConfigArgument{
					"range": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.kpis,
			},
			"movements": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(stockMovementType))),
				Args: graphql.FieldConfigArgument{
					"productId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: r.movements,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"updateDemand": &graphql.Field{
				Type: graphql.NewNonNull(productType),
				Args: graphql.FieldConfigArgument{
					"productId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"demand":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.updateDemand,
			},
			"transferStock": &graphql.Field{
				Type: graphql.NewNonNull(productType),
				Args: graphql.FieldConfigArgument{
					"productId":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"fromWarehouse": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"toWarehouse":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"quantity":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.transferStock,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}
