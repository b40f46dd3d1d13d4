// Package input turns a list of input files into one stream of lines.
//
// Files are opened lazily, one at a time, so a run over thousands of files
// holds a single descriptor. Each source is sniffed for gzip or zstd magic
// bytes and decompressed on the fly; anything else is read as plain text.
// Standard input is selected with "-" and is sniffed the same way.
package input
