/*
Package reltab implements an in-memory relational-algebra core: typed
tables with a primary-key index, and the operators that derive new
tables from existing ones.

We implement:

1. A closed domain model: eight scalar kinds carried by a tagged Value.

2. Schemas, ordered attribute/domain pairs with a designated key subset.

3. Tables, append-only tuple stores with a B-tree primary-key index.

4. Operators: project, three select forms (predicate, textual condition,
indexed key lookup), union, minus, and three join strategies (equi,
theta, natural).

# Technical Details

**Derived tables.**
Every operator returns a fresh table named from the source table and a
session counter. Derived tables carry a schema and tuples but an empty
index; the index only tracks tuples that go through Insert.

**Bag semantics.**
Project preserves duplicates. Union eliminates cross-input duplicates by
exact tuple equality; minus removes by exact tuple equality.

**Key encoding.**
Composite keys are compared through an order-preserving byte encoding
(sign-flipped big-endian integers, IEEE-trick floats, NUL-escaped
terminated strings), which also serves as the tuple fingerprint for the
set operators.

**Conditions.**
The textual condition forms "attr op intLiteral" (select) and
"attr1 op attr2" (theta join) are parsed up front; condition errors fail
the operation before any tuple is scanned.

Persistence of whole-table snapshots lives in the store subpackage;
rendering lives in the display subpackage. The core itself never touches
the filesystem or the terminal.
*/
package reltab
