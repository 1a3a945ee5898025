package service

import "strings"

// Greeting returns a personalized greeting, or a generic one when name is blank.
func Greeting(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Hello from GreetingService!"
	}
	return "Hello, " + name + "!"
}
