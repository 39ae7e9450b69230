// Package formats provides parsers for the mesh file formats the editor imports.
package formats
