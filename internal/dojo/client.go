// Package dojo is a thin DefectDojo API client covering the import path
// used by the upload command: product type, product, engagement, scan import.
package dojo

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// ProductTypeInferdiffRepo groups products created by this tool.
	ProductTypeInferdiffRepo = "INFERDIFF-REPO"

	// ScanTypeSARIF is the DefectDojo scan type of the uploaded artifacts.
	ScanTypeSARIF = "SARIF"
)

type Client struct {
	httpc *resty.Client
}

// New wraps a preconfigured resty client with the DefectDojo base URL and
// token auth.
func New(httpc *resty.Client, url, token string) Client {
	httpc.SetBaseURL(url)
	httpc.SetHeader("Authorization", fmt.Sprintf("Token %s", token))
	return Client{httpc: httpc}
}

type ProductType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type getProductTypesResult struct {
	Count   int           `json:"count"`
	Results []ProductType `json:"results"`
}

type Product struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type getProductsResult struct {
	Count   int       `json:"count"`
	Results []Product `json:"results"`
}

type Engagement struct {
	ID        int `json:"id"`
	ProductID int `json:"product"`
}

func (c Client) GetProductType(productTypeName string) (*ProductType, error) {
	var r getProductTypesResult
	resp, err := c.httpc.R().
		SetQueryParams(map[string]string{
			"name": productTypeName,
		}).
		SetResult(&r).
		Get("/api/v2/product_types/")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%d on getting product_types '%s'", resp.StatusCode(), productTypeName)
	}
	if r.Count > 1 {
		return nil, fmt.Errorf("multiple product_types with the same name '%s'", productTypeName)
	}
	if r.Count == 0 {
		return nil, nil
	}
	return &r.Results[0], nil
}

func (c Client) CreateProductType(productTypeName string) (*ProductType, error) {
	var p ProductType
	resp, err := c.httpc.R().
		SetFormData(map[string]string{
			"name": productTypeName,
		}).
		SetResult(&p).
		Post("/api/v2/product_types/")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusCreated {
		return nil, fmt.Errorf("%d on creating product_type '%s'", resp.StatusCode(), productTypeName)
	}
	return &p, nil
}

func (c Client) GetOrCreateProductType(productTypeName string) (*ProductType, error) {
	productType, err := c.GetProductType(productTypeName)
	if err != nil {
		return nil, err
	}
	if productType != nil {
		return productType, nil
	}
	return c.CreateProductType(productTypeName)
}

func (c Client) GetProduct(productName string) (*Product, error) {
	var r getProductsResult
	resp, err := c.httpc.R().
		SetQueryParams(map[string]string{
			"name": productName,
		}).
		SetResult(&r).
		Get("/api/v2/products/")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%d on getting product '%s'", resp.StatusCode(), productName)
	}
	if r.Count > 1 {
		return nil, fmt.Errorf("multiple products with the same name '%s'", productName)
	}
	if r.Count == 0 {
		return nil, nil
	}
	return &r.Results[0], nil
}

func (c Client) CreateProduct(productName string, productType ProductType) (*Product, error) {
	var p Product
	resp, err := c.httpc.R().
		SetFormData(map[string]string{
			"name":        productName,
			"description": fmt.Sprintf("Differential results for product: '%s'", productName),
			"prod_type":   strconv.Itoa(productType.ID),
		}).
		SetResult(&p).
		Post("/api/v2/products/")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusCreated {
		return nil, fmt.Errorf("%d on creating product '%s'", resp.StatusCode(), productName)
	}
	return &p, nil
}

func (c Client) GetOrCreateProduct(productName string, productType ProductType) (*Product, error) {
	product, err := c.GetProduct(productName)
	if err != nil {
		return nil, err
	}
	if product != nil {
		return product, nil
	}
	return c.CreateProduct(productName, productType)
}

// CreateEngagement opens a completed engagement for one differential run.
func (c Client) CreateEngagement(product Product, engagementName string) (*Engagement, error) {
	var engagement Engagement
	currentDate := time.Now().Format("2006-01-02")
	resp, err := c.httpc.R().
		SetFormData(map[string]string{
			"target_start": currentDate,
			"target_end":   currentDate,
			"status":       "Completed",
			"product":      strconv.Itoa(product.ID),
			"name":         engagementName,
		}).
		SetResult(&engagement).
		Post("/api/v2/engagements/")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusCreated {
		return nil, fmt.Errorf("%d on creating engagement for product '%s'", resp.StatusCode(), product.Name)
	}
	return &engagement, nil
}

func (c Client) ImportScanResult(engagement Engagement, resultPath string, scanType string) error {
	resp, err := c.httpc.R().
		SetFiles(map[string]string{
			"file": resultPath,
		}).
		SetFormData(map[string]string{
			"engagement": strconv.Itoa(engagement.ID),
			"scan_type":  scanType,
		}).
		Post("/api/v2/import-scan/")
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusCreated {
		return fmt.Errorf("%d on importing results to engagement '%d'", resp.StatusCode(), engagement.ID)
	}
	return nil
}
