package main

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

func basicFace() font.Face { return basicfont.Face7x13 }

func goRegularTTF() []byte { return goregular.TTF }
