package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
)

type resolver struct {
	deps Deps
}

func (r *resolver) products(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.deps.ProductUC.List(filterArgsFrom(p.Args))
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return out, nil
}

func (r *resolver) productsPage(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.deps.ProductUC.ListPage(dto.ProductListRequest{
		ProductFilterRequest: filterArgsFrom(p.Args),
		Page:                 intArg(p.Args, "page"),
		PageSize:             intArg(p.Args, "pageSize"),
	})
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return *out, nil
}

func (r *resolver) product(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.deps.ProductUC.GetByID(stringArg(p.Args, "id"))
	if err != nil {
		return nil, toGraphQLError(err)
	}
	if out == nil {
		return nil, nil
	}
	return *out, nil
}

func (r *resolver) warehouses(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.deps.WarehouseUC.List()
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return out.Items, nil
}

func (r *resolver) kpis(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.deps.KPIUC.GetKPIs(p.Context, stringArg(p.Args, "range"))
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return *out, nil
}

func (r *resolver) movements(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.deps.MutationUC.ListMovements(stringArg(p.Args, "productId"), 0)
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return out.Items, nil
}

func (r *resolver) updateDemand(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.deps.MutationUC.UpdateDemand(p.Context, stringArg(p.Args, "productId"), intArg(p.Args, "demand"))
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return *out, nil
}

func (r *resolver) transferStock(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.deps.MutationUC.TransferStock(p.Context, dto.TransferStockRequest{
		ProductID:     stringArg(p.Args, "productId"),
		FromWarehouse: stringArg(p.Args, "fromWarehouse"),
		ToWarehouse:   stringArg(p.Args, "toWarehouse"),
		Quantity:      intArg(p.Args, "quantity"),
	})
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return *out, nil
}

func filterArgsFrom(args map[string]interface{}) dto.ProductFilterRequest {
	return dto.ProductFilterRequest{
		Search:    stringArg(args, "search"),
		Warehouse: stringArg(args, "warehouse"),
		Status:    stringArg(args, "status"),
	}
}

func stringArg(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

func intArg(args map[string]interface{}, key string) int {
	n, _ := args[key].(int)
	return n
}
