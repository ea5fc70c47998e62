/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/trongkhoidev/JDice-Team3/cmd"

func main() {
	cmd.Execute()
}
