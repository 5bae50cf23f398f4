// Package graph defines the scene graph produced by evaluating a Goldberg
// script. The graph is an immutable DAG of named polyhedron parts and the
// assemblies that group them.
package graph
