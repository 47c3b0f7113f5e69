package domain

// Service computes reports from in-memory invoice and customer collections.
// Inputs tolerate both normalized and legacy field names; the call never
// fails on missing or malformed fields.
type Service interface {
	Generate(invoices, customers []map[string]any, meta Meta) Report
}
