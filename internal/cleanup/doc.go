// Package cleanup removes editor junk files and empty folders from a photo
// tree.
//
// Junk files are matched by case-insensitive glob patterns (Adobe Bridge and
// Picasa droppings by default). Empty folders are collected bottom-up and
// deleted repeatedly until a pass removes nothing, so nested empty
// hierarchies collapse completely. An optional excluded subtree is left
// untouched by both phases.
package cleanup
