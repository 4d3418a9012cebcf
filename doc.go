/*
Package opendrive decodes OpenDRIVE (.xodr) road network documents into a
typed object graph and derives the drivable view of that graph.

Decoding is a single recursive descent over the XML tree: header, roads,
controllers and junctions are built bottom-up with every structural
requirement checked on the way. A document that violates one of them fails
as a whole with an error from the oderr sub-package describing the failing
element; there is no partial result.

The drivable view is produced by a two pass filter: roads whose lanes are
all of an irrelevant type (sidewalk, none, shoulder, median) are dropped,
then the surviving roads have those lanes pruned. The filtered roads are
derived copies, the decoded graph is never modified.

See the oderr sub-directory for the failure taxonomy and xmlutil for the
attribute accessors shared by all builders.
*/
package opendrive
