// Package feature holds the runtime toggles staff can flip without a deployment.
package feature
