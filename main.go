package main

import "github.com/kcvvelewijt/clubsite-api/cmd"

// @title           KCVV Club Site API
// @version         1.0.0
// @description     Search API for the club website: articles, people and teams
// @contact.name    API Support
// @contact.url     https://github.com/kcvvelewijt/clubsite-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
