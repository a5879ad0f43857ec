package main

import "artgallery/internal/domain"

type seedArtist struct {
	artist   domain.Artist
	artworks []domain.Artwork
}

func strPtr(s string) *string { return &s }

var seedData = []seedArtist{
	{
		artist: domain.Artist{
			Name:           "Sophia Turner",
			Bio:            "Contemporary painter focusing on urban themes and vibrant cityscapes. Sophia's work explores the interplay of light and shadow in modern metropolitan landscapes.",
			ProfileImage:   "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150&h=150&fit=crop",
			Specialization: "Painting",
			Website:        strPtr("sophiaturner.art"),
			Instagram:      strPtr("@sophiaturner_art"),
		},
		artworks: []domain.Artwork{
			{
				Title:       "Neon City Dreams",
				Price:       34500,
				Currency:    "INR",
				Image:       "https://images.unsplash.com/photo-1578301978162-7aae4d755744?w=500&h=500&fit=crop",
				Description: "A vibrant depiction of night life in a modern city, capturing the energy and excitement of urban landscapes through bold color contrasts.",
				Dimensions:  "24 x 36 inches",
				Year:        2024,
				Category:    "Painting",
				Medium:      strPtr("Acrylic on Canvas"),
			},
			{
				Title:       "Twilight Reflections",
				Price:       29000,
				Currency:    "INR",
				Image:       "https://imgs.search.brave.com/cWMJQ2Ik4Re3a_Dfc1XJ7pokdAtIyiXpy252wnaxEjc/rs:fit:860:0:0:0/g:ce/aHR0cHM6Ly93d3cu/amFja3NvbnNhcnQu/Y29tL2Jsb2cvd3At/Y29udGVudC91cGxv/YWRzLzIwMjMvMDEv/SG93X1RvX1Bob3Rv/Z3JhcGhfWW91cl9B/cnR3b3JrX0lOX1RI/RV9XSU5ET1cuanBn",
				Description: "A peaceful urban scene at dusk with reflective surfaces and soft lighting creating moody atmosphere.",
				Dimensions:  "20 x 20 inches",
				Year:        2023,
				Category:    "Painting",
				Medium:      strPtr("Oil on Canvas"),
			},
			{
				Title:       "Urban Fragments",
				Price:       31400,
				Currency:    "INR",
				Image:       "https://imgs.search.brave.com/ZoYulcihvQkqf3KVkUNPEDjN28JhemnYjfj35wakF58/rs:fit:860:0:0:0/g:ce/aHR0cHM6Ly90My5m/dGNkbi5uZXQvanBn/LzA3LzkzLzk0Lzgy/LzM2MF9GXzc5Mzk0/ODI0MF9uNGpqM2kz/R2M4QUpHUndsajFH/Mkt3TEc1QXFyS3lP/NS5qcGc",
				Description: "Capturing the essence of city life through reflections, perspectives, and architectural elements.",
				Dimensions:  "22 x 30 inches",
				Year:        2023,
				Category:    "Painting",
				Medium:      strPtr("Mixed Media"),
			},
		},
	},
	{
		artist: domain.Artist{
			Name:           "Marcus Chen",
			Bio:            "Abstract expressionist exploring color, form, and emotional depth through bold gestural marks. Marcus's practice investigates the boundaries between representation and abstraction.",
			ProfileImage:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop",
			Specialization: "Abstract",
			Website:        strPtr("marcuschen.studio"),
			Instagram:      strPtr("@marcuschenart"),
		},
		artworks: []domain.Artwork{
			{
				Title:       "Chromatic Euphoria",
				Price:       39800,
				Currency:    "INR",
				Image:       "https://imgs.search.brave.com/RHHGMULejfEUgqzqyJjL97NnlADbAYEERZnWxOciLGY/rs:fit:860:0:0:0/g:ce/aHR0cHM6Ly9pLmV0/c3lzdGF0aWMuY29t/LzY2ODIzMjIvci9p/bC9jOWY3NmYvNTY1/Nzk3NzkzOS9pbF82/MDB4NjAwLjU2NTc5/Nzc5MzlfZnNncC5q/cGc",
				Description: "An abstract exploration of color and emotion, blending gestural techniques and bold color choices to evoke joy and movement.",
				Dimensions:  "30 x 40 inches",
				Year:        2024,
				Category:    "Abstract",
				Medium:      strPtr("Mixed Media"),
			},
			{
				Title:       "Luminescent Void",
				Price:       36700,
				Currency:    "INR",
				Image:       "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=500&h=500&fit=crop",
				Description: "A radiant abstract piece exploring the interplay of light and shadow, creating a sense of infinite depth and movement.",
				Dimensions:  "28 x 28 inches",
				Year:        2024,
				Category:    "Abstract",
				Medium:      strPtr("Acrylic on Canvas"),
			},
			{
				Title:       "Color Symphony",
				Price:       38200,
				Currency:    "INR",
				Image:       "https://imgs.search.brave.com/h3hyakyN35wL_hpfE2bHZvRerXpwN8VNbQguytvBtvY/rs:fit:860:0:0:0/g:ce/aHR0cHM6Ly93d3cu/dWdhbGxlcnkuY29t/L2Nkbi9zaG9wL3By/b2R1Y3RzL29yaWdf/bGlzYS1lbGxleS1v/aWwtcGFpbnRpbmct/Y29sb3JmdWwtc3lt/cGhvbnktZGV0YWls/LTNfNTQweC5qcGc_/dj0xNjk3Njk0NDY5",
				Description: "A harmonious blend of colors creating a visual symphony of emotions, where each hue plays its own instrument.",
				Dimensions:  "32 x 32 inches",
				Year:        2024,
				Category:    "Abstract",
				Medium:      strPtr("Acrylic on Canvas"),
			},
		},
	},
	{
		artist: domain.Artist{
			Name:           "Emma Rodriguez",
			Bio:            "Digital artist creating stunning landscapes and 3D visualizations that blend technology with artistic vision. Emma pioneers new approaches to digital creation.",
			ProfileImage:   "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop",
			Specialization: "Digital Art",
			Website:        strPtr("emmarodriguez.digital"),
			Instagram:      strPtr("@emmarodriguez_art"),
		},
		artworks: []domain.Artwork{
			{
				Title:       "Digital Horizon",
				Price:       24500,
				Currency:    "INR",
				Image:       "https://imgs.search.brave.com/WqYt41rHRhBcAPXP4cG3YOt-Ij81QnD6SumdF0XRF0o/rs:fit:860:0:0:0/g:ce/aHR0cHM6Ly9tZWRp/YS5nZXR0eWltYWdl/cy5jb20vaWQvMTUx/MzMwNzIwL3ZlY3Rv/ci9hbGllbi1wbGFu/ZXQtYXJ0d29yay5q/cGc_cz02MTJ4NjEy/Jnc9MCZrPTIwJmM9/ZTlYTXpTVXlFYkp3/X2JKcFdXQWN4LWpL/VXp2ODByRHRsSjYz/WTVSaVExcz0",
				Description: "A stunning digital landscape combining technology and nature in perfect harmony, showcasing surreal environmental elements.",
				Dimensions:  "Digital - 4K",
				Year:        2024,
				Category:    "Digital Art",
				Medium:      strPtr("Digital"),
			},
			{
				Title:       "Ethereal Worlds",
				Price:       34500,
				Currency:    "INR",
				Image:       "https://imgs.search.brave.com/B6eHuNHVTB3pUAw7dI0mVEgHEuvKAHbPBXETBiVGRHg/rs:fit:860:0:0:0/g:ce/aHR0cHM6Ly9hZmZv/cmRhYmxlYXJ0ZmFp/ci5jb20vd3AtY29u/dGVudC91cGxvYWRz/LzIwMjMvMDkvZXRo/ZXJlYWwtYXJ0LWRh/bi1oaWxsaWVyLmpw/Zw",
				Description: "Digital art transcending reality with imaginative and fantastical elements, blending surrealism with technological innovation.",
				Dimensions:  "Digital - 8K",
				Year:        2024,
				Category:    "Digital Art",
				Medium:      strPtr("3D Render"),
			},
		},
	},
	{
		artist: domain.Artist{
			Name:           "James Mitchell",
			Bio:            "Sculptor with a passion for creating dramatic forms in wood and stone. James explores the tension between raw material and refined form.",
			ProfileImage:   "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=150&h=150&fit=crop",
			Specialization: "Sculpture",
			Website:        strPtr("jamesmitchell.sculpture"),
			Instagram:      strPtr("@jmitchell_sculptor"),
		},
		artworks: []domain.Artwork{
			{
				Title:       "Stone Echo",
				Price:       49800,
				Currency:    "INR",
				Image:       "https://imgs.search.brave.com/BAI2WJ7IX_uGOEe_USgnN2GCYFUwmgmB0qubtEV2xpo/rs:fit:860:0:0:0/g:ce/aHR0cHM6Ly9yZW5k/ZXIuZmluZWFydGFt/ZXJpY2EuY29tL2lt/YWdlcy9pbWFnZXMt/cHJvZmlsZS1mbG93/LzQwMC9pbWFnZXMv/YXJ0d29ya2ltYWdl/cy9tZWRpdW1sYXJn/ZS8zL2VjaG9zLW9m/LXN1bnNldC1wYXJr/LW1hcnktc3ZldGlr/LmpwZw",
				Description: "A monumental sculpture in marble, reflecting the essence of human emotion and timeless beauty.",
				Dimensions:  "24 x 18 x 30 inches",
				Year:        2023,
				Category:    "Sculpture",
				Medium:      strPtr("Marble"),
			},
		},
	},
	{
		artist: domain.Artist{
			Name:           "Olivia Park",
			Bio:            "Photographer capturing raw emotions and untold stories through her lens. Olivia's work documents the human experience with intimacy and authenticity.",
			ProfileImage:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop",
			Specialization: "Photography",
			Website:        strPtr("oliviapark.photography"),
			Instagram:      strPtr("@oliviapark_photos"),
		},
		artworks: []domain.Artwork{
			{
				Title:       "The Human Story",
				Price:       29800,
				Currency:    "INR",
				Image:       "https://imgs.search.brave.com/d6Bdt7e6cv7Jaqk5WoisFCaZ_feCG7DhtMxficHDxoM/rs:fit:860:0:0:0/g:ce/aHR0cHM6Ly9pLmV0/c3lzdGF0aWMuY29t/LzYyMzAxMjYvci9p/bC9kNWE0ZTYvNTM3/MjU0NzgzOS9pbF82/MDB4NjAwLjUzNzI1/NDc4MzlfdHZjcy5q/cGc",
				Description: "A powerful portrait series documenting human stories and untold narratives with raw authenticity and emotion.",
				Dimensions:  "16 x 24 inches",
				Year:        2024,
				Category:    "Photography",
				Medium:      strPtr("Archival Print"),
			},
			{
				Title:       "Whispers of Time",
				Price:       28300,
				Currency:    "INR",
				Image:       "https://imgs.search.brave.com/n8ZHJhq7fHQZk9zdsjN9BjISo7-5ZQwuaQZ2pxg-fjY/rs:fit:860:0:0:0/g:ce/aHR0cHM6Ly9meWRu/LmltZ2l4Lm5ldC9t/L2dlbi9hcnQtcHJp/bnQtc3F1YXJlLWZy/YW1lZC1ibGFjay9l/ZGM4M2Y5Yi1iYjUz/LTQ5ZTMtOGFmYi01/OTVjMjMwNWIxNjYu/anBnP2F1dG89Zm9y/bWF0LGNvbXByZXNz/JnE9NTAmdz0yODA",
				Description: "A delicate photographic series capturing intimate moments and the quiet beauty of fleeting instances.",
				Dimensions:  "12 x 18 inches",
				Year:        2023,
				Category:    "Photography",
				Medium:      strPtr("Fine Art Print"),
			},
		},
	},
	{
		artist: domain.Artist{
			Name:           "David Bergström",
			Bio:            "Minimalist artist exploring the beauty of simplicity and negative space. David's work is an exercise in reduction and clarity.",
			ProfileImage:   "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150&h=150&fit=crop",
			Specialization: "Minimalist",
			Website:        strPtr("davidbergstrom.art"),
			Instagram:      strPtr("@davidbergstrom_"),
		},
		artworks: []domain.Artwork{
			{
				Title:       "Silence & Form",
				Price:       24500,
				Currency:    "INR",
				Image:       "https://imgs.search.brave.com/iIWdDpTkm3WrhBKh-eYO3Z4EcTKyTA-p1QAApwNZCLo/rs:fit:860:0:0:0/g:ce/aHR0cHM6Ly90NC5m/dGNkbi5uZXQvanBn/LzE1LzYzLzYyLzk5/LzM2MF9GXzE1NjM2/Mjk5NzZfa1pUMEFE/VHRJYkNqR25kTmQx/UUFZdTExY3lISXNK/bWMuanBn",
				Description: "An exploration of negative space and simplicity in contemporary art, where absence speaks louder than presence.",
				Dimensions:  "20 x 20 inches",
				Year:        2024,
				Category:    "Minimalist",
				Medium:      strPtr("Ink on Paper"),
			},
		},
	},
}
