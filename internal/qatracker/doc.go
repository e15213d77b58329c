// Package qatracker renders the multilingual QA scenario dataset into an xlsx tracking workbook.
package qatracker
