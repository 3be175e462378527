// Package content loads quiz exercises from the built-in bundle and from
// external files (JSON, CSV, XLSX) stored locally or in an S3 bucket.
//
// All formats share the flat record layout of the exercise bundle:
//
//	question, facture, journal,
//	cpt_1, mnt_d1, mnt_c1,
//	cpt_2, mnt_d2, mnt_c2,
//	cpt_3, mnt_d3, mnt_c3
//
// Accounts may be written as numbers or strings; blank amounts are zero.
package content
