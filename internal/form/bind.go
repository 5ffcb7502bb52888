package form

import "net/http"

// Bind methods let go-chi/render validate a request right after decoding it.

func (r *ProductRequest) Bind(*http.Request) error        { return r.Validate() }
func (r *AddPurchaseRequest) Bind(*http.Request) error    { return r.Validate() }
func (r *UpdatePurchaseRequest) Bind(*http.Request) error { return r.Validate() }
func (r *SaleRequest) Bind(*http.Request) error           { r.Normalize(); return r.Validate() }
func (r *AddSaleRequest) Bind(*http.Request) error        { return r.Validate() }
