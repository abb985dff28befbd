// Package pearson provides the correlation kernels used by the
// intersubject analysis engines: a scalar Pearson correlation for single
// series pairs and an all-pairs row correlation that normalizes each row
// once and reduces the remaining work to a single matrix product.
package pearson
