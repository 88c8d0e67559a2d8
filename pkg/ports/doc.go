/*
Package ports defines the driven ports (interfaces) for the Stoich engine.

These interfaces decouple the balancing core from external implementations,
allowing the host adapters to record results in various backends.

# Key Interfaces

  - HistoryStore: Responsible for persisting recently balanced equations
    (memory or Redis).
*/
package ports
