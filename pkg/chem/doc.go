/*
Package chem contains the core domain models for the Stoich balancing engine.

It defines the fundamental entities of a chemical equation, such as element
Symbols, compound Compositions, and the Equation itself, together with the
error taxonomy shared by the parsing and solving stages. This package is kept
pure and free of I/O concerns, following Hexagonal Architecture principles.

# Key Entities

  - Symbol: A validated chemical element symbol ("H", "Fe", "Uuo" is rejected).
  - Composition: The atomic makeup of one compound after group expansion.
  - Compound: The original formula text plus its Composition.
  - Equation: Ordered reactants and products, plus the arrow token used.
*/
package chem
