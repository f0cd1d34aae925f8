package service

import "loja-service/internal/entity"

type CustomerService struct {
	crud[entity.Customer]
}

func NewCustomerService(repo store[entity.Customer]) *CustomerService {
	return &CustomerService{crud[entity.Customer]{repo: repo, kind: "customer", notFound: ErrCustomerNotFound}}
}

type SupplierService struct {
	crud[entity.Supplier]
}

func NewSupplierService(repo store[entity.Supplier]) *SupplierService {
	return &SupplierService{crud[entity.Supplier]{repo: repo, kind: "supplier", notFound: ErrSupplierNotFound}}
}

type ProductService struct {
	crud[entity.Product]
}

func NewProductService(repo store[entity.Product]) *ProductService {
	return &ProductService{crud[entity.Product]{repo: repo, kind: "product", notFound: ErrProductNotFound}}
}
