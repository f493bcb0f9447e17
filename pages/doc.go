// Package pages holds page objects for the-internet demo application. They
// double as usage examples of the pom wrappers.
package pages
