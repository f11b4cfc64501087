// Package pyseer reads association result tables written by pyseer: a header
// row naming the columns followed by one row per variant. It resolves which
// columns hold the variant identifier and the p-value, and extracts the
// base-pair position encoded inside variant identifiers such as
// "AE017143.1_12345_A_T".
package pyseer
