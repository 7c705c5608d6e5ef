/*

Package gconf implements a configuration store intended to be used as a
global, in-database configuration.

Each package keeps its configuration in a single entity, stored under a
key derived from the package name. Configuration is initialized from the
genesis and from then on can only be altered by the engine itself, for
example when a threshold change request is executed.

*/
package gconf
