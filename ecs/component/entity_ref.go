package component

// Entity mirrors ecs.Entity so components can reference other entities
// without importing the ecs package.
type Entity = uint64
