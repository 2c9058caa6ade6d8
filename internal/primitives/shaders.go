package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// loadLitShader returns the default-lighting shader: one directional light, ambient and a
// Blinn-Phong highlight. Color is the albedo texture (raylib's white default texture when
// none is bound) times colDiffuse, so the same shader serves plain and textured materials.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = normalize(mat3(transpose(inverse(matModel))) * vertexNormal);
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = texture(texture0, fragTexCoord) * colDiffuse;
  vec3 N = normalize(fragNormal);
  if (!gl_FrontFacing) N = -N;
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  float spec = pow(max(dot(N, normalize(L + V)), 0.0), specularPower) * specularStrength;
  vec3 specular = lightColor * spec * step(0.0, NdotL);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)

// Lighting defaults: a soft warm-white key light from above and a dim ambient term so
// unlit faces are not pure black.
var (
	defaultAmbient    = [4]float32{0.25, 0.27, 0.3, 1.0}
	defaultLightColor = [3]float32{1.0, 0.98, 0.95}
	defaultLightDir   = [3]float32{0.4, 1, 0.6}
)

const (
	defaultLightIntensity   = float32(0.8)
	defaultSpecularPower    = float32(32.0)
	defaultSpecularStrength = float32(0.25)
)

// setLitShaderUniforms sets per-frame lighting uniforms (cgo-safe: local arrays).
func (r *Registry) setLitShaderUniforms(shader rl.Shader) {
	viewPos := r.viewPos
	lightDir := r.lightDir
	amb := defaultAmbient
	lightColor := defaultLightColor
	setVec := func(name string, v []float32, typ rl.ShaderUniformDataType) {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			rl.SetShaderValue(shader, loc, v, typ)
		}
	}
	setVec("viewPos", viewPos[:], rl.ShaderUniformVec3)
	setVec("lightDir", lightDir[:], rl.ShaderUniformVec3)
	setVec("ambient", amb[:], rl.ShaderUniformVec4)
	setVec("lightColor", lightColor[:], rl.ShaderUniformVec3)
	setVec("lightIntensity", []float32{defaultLightIntensity}, rl.ShaderUniformFloat)
	setVec("specularPower", []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	setVec("specularStrength", []float32{defaultSpecularStrength}, rl.ShaderUniformFloat)
}
