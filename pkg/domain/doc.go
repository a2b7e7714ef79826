/*
Package domain contains the schema node model and the documentation records derived from it.

A schema is a tree describing the shape of a configuration format. Each node knows how to
describe itself and which values it accepts; it never knows where it sits in the tree. Paths
are computed by the traversal engine and handed to the node when a description is needed.

This package is kept pure and free of external dependencies like I/O or persistence.

# Key Entities

  - Node: One of Root, Mapping, OpenMapping, Sequence, Scalar or FixedValue.
  - Cast: A primitive value kind accepted by a Scalar (string, integer, boolean...).
  - Descriptions: An immutable lookup table of human text keyed by path or type tag.
  - Entry: One documentation record for a single key path.
  - Schema: A loaded tree together with its description table.
*/
package domain
